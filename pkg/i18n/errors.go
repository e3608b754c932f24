package i18n

import "errors"

var (
	ErrNilAdapter    = errors.New("i18n.nil_adapter")
	ErrEmptyLanguage = errors.New("i18n.empty_language")

	ErrFailedToParseJSON = errors.New("i18n.parse_json")
	ErrFailedToParseYAML = errors.New("i18n.parse_yaml")
	ErrParsingCancelled  = errors.New("i18n.parsing_cancelled")

	ErrFailedToReadDirectory = errors.New("i18n.read_directory")
	ErrFailedToReadFile      = errors.New("i18n.read_file")
	ErrNoTranslationFiles    = errors.New("i18n.no_translation_files")
	ErrLoadingCancelled      = errors.New("i18n.loading_cancelled")
)
