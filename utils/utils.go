package utils

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/schollz/progressbar/v3"
)

// ParseMessage decodes a loosely typed socket payload into ret.
func ParseMessage(msg any, ret any) error {
	if s, ok := msg.(string); ok {
		if err := json.Unmarshal([]byte(s), ret); err != nil {
			return fmt.Errorf("decode message: %w", err)
		}
		return nil
	}
	jsonBody, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("encode message: %w", err)
	}
	if err := json.Unmarshal(jsonBody, ret); err != nil {
		return fmt.Errorf("decode message: %w", err)
	}
	return nil
}

// NewBar returns a progress bar drawing to w, or a silent one when w is nil.
func NewBar(w io.Writer, max int, desc string) *progressbar.ProgressBar {
	if w == nil {
		w = io.Discard
	}
	return progressbar.NewOptions(max,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription(desc),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
}
