package settings

import "os"

var version = "dev"

// InDevelop report whether running in a development environment
func InDevelop() bool {
	switch os.Getenv("ASKPAD_ENV") {
	case "dev", "develop", "development":
		return true
	}
	return version == "dev"
}
