package config

import (
	"fmt"
	"os"
	"strings"
)

func Template(kind string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "dump":
		return dumpTemplate, nil
	default:
		return "", fmt.Errorf("unknown config kind: %s", kind)
	}
}

func WriteTemplate(path, kind string, overwrite bool) error {
	template, err := Template(kind)
	if err != nil {
		return err
	}
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config already exists: %s", path)
		}
	}
	return os.WriteFile(path, []byte(template), 0o600)
}

const dumpTemplate = `# output: "text" or "json"
format = "text"
# verbose JSON renders enum labels and raw prices
verbose = false
# input: "binary" or "hex"
input = "binary"
max_message_bytes = 65536
log_level = "info"
# write decoder metrics to stderr when done
metrics = false
`
