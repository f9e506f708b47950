package locale

import (
	"github.com/spf13/viper"

	appErrors "timeago/internal/errors"
)

// Load reads a catalog from a JSON or YAML translation file. The decoded
// catalog is validated before it is returned, so a half-written file can
// never end up active. Loaded catalogs format ordinals as plain digits.
func Load(path string) (Catalog, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return Catalog{}, appErrors.New(appErrors.CodeConfigurationError,
			"read locale file "+path, err)
	}

	var c Catalog
	if err := v.Unmarshal(&c); err != nil {
		return Catalog{}, appErrors.New(appErrors.CodeConfigurationError,
			"decode locale file "+path, err)
	}
	if err := c.Validate(); err != nil {
		return Catalog{}, err
	}
	return c, nil
}
