package appinfo

import "errors"

var (
	ErrInvalidOptions         = errors.New("appinfo: invalid options")
	ErrMissingVersion         = errors.New("appinfo: manifest has no version")
	ErrPrimaryLanguageMissing = errors.New("appinfo: primary language directory missing")
	ErrInvalidTranslationFile = errors.New("appinfo: invalid translation file")
	ErrNoPrimaryKeys          = errors.New("appinfo: primary language has no translation keys")
)
