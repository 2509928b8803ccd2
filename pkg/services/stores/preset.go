package stores

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/liut/askpad/pkg/models/qa"
	"github.com/liut/askpad/pkg/settings"
)

func LoadPreset() (doc qa.Preset, err error) {
	if len(settings.Current.PresetFile) > 0 {
		var yf *os.File
		yf, err = os.Open(settings.Current.PresetFile)
		if err != nil {
			logger().Infow("load preset fail", "file", settings.Current.PresetFile, "err", err)
			return
		}
		defer yf.Close()
		err = yaml.NewDecoder(yf).Decode(&doc)
		if err != nil {
			logger().Infow("decode preset fail", "err", err)
			return
		}
	}

	return
}
