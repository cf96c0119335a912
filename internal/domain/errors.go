package domain

import (
	"fmt"

	appErrors "cadence/internal/errors"
)

func invalidWeekdayError(day string) error {
	return appErrors.New(appErrors.CodeInvalidWeekday, fmt.Sprintf("invalid weekday: %s", day), nil)
}

func invalidFrequencyError(reason string) error {
	return appErrors.New(appErrors.CodeInvalidFrequency, reason, nil)
}

func invalidTitleError(reason string) error {
	return appErrors.New(appErrors.CodeInvalidTitle, reason, nil)
}
