package nasa

import (
	"fmt"

	"github.com/nasaimg/nasaimg/log"
)

// Progress is reported once per fetched page of a paginated call.
type Progress struct {
	Operation string
	Page      int
	Retrieved int
	TotalHits int
}

// Fraction is the share of total hits retrieved so far.
func (p Progress) Fraction() float64 {
	if p.TotalHits <= 0 {
		return 1
	}
	return float64(p.Retrieved) / float64(p.TotalHits)
}

func (p Progress) String() string {
	return fmt.Sprintf("Extracting items @ Page.%03d... %6.2f%%", p.Page, p.Fraction()*100)
}

// ProgressFunc receives page progress.
type ProgressFunc func(Progress)

func logProgress(p Progress) {
	log.Infof("%s: %s", p.Operation, p)
}
