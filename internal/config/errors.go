package config

import "github.com/ayoisaiah/schoolday/internal/apperr"

var (
	errConfigOption = &apperr.Error{
		Message: "config option error",
	}

	errConfigValidation = &apperr.Error{
		Message: "config validation error",
	}

	errReadConfig = &apperr.Error{
		Message: "reading config file failed",
	}

	errWriteConfig = &apperr.Error{
		Message: "writing default config failed",
	}

	errInvalidTickInterval = &apperr.Error{
		Message: "tick interval must be between %v and %v, got %v",
	}

	errInvalidDisplayMode = &apperr.Error{
		Message: "display mode must be %q or %q, got %q",
	}

	errInvalidStage = &apperr.Error{
		Message: "unknown stage %q (expected elementary, middle, high or college)",
	}

	errInvalidDriver = &apperr.Error{
		Message: "storage driver must be %q or %q, got %q",
	}

	errInvalidCLIInterval = &apperr.Error{
		Message: "invalid tick interval %q",
	}
)
