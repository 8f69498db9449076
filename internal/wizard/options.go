package wizard

import (
	"strconv"

	"github.com/charmbracelet/huh"
)

// CountOptions returns the selectable column counts.
func CountOptions() []huh.Option[int] {
	opts := make([]huh.Option[int], 0, MaxColumns-MinColumns+1)
	for n := MinColumns; n <= MaxColumns; n++ {
		opts = append(opts, huh.NewOption(strconv.Itoa(n), n))
	}
	return opts
}
