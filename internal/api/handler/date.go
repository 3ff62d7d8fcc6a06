package handler

import (
	"time"

	"github.com/nikrus/rpsduel-go/internal/dependencies/clock"
	"github.com/nikrus/rpsduel-go/internal/model"
)

// resolveDate validates an optional request date, defaulting to the clock's
// current date
func resolveDate(clk clock.Clock, date string) (string, error) {
	if date == "" {
		return clock.Today(clk), nil
	}
	if _, err := time.Parse(model.DateFormat, date); err != nil {
		return "", model.ErrInvalidDate
	}
	return date, nil
}
