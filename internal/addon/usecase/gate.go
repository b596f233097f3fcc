package usecase

import (
	"parentsguide-srv/internal/addon"
	"parentsguide-srv/pkg/metrics"
)

// isAllowed blocks anything rated above the allowed age.
func (uc *implUseCase) isAllowed(age int) bool {
	return age <= uc.cfg.AllowedAge
}

// gate records the decision and returns a *BlockedError for blocked ratings.
func (uc *implUseCase) gate(age int) error {
	if uc.isAllowed(age) {
		metrics.GateDecisions.WithLabelValues("allow").Inc()
		return nil
	}
	metrics.GateDecisions.WithLabelValues("block").Inc()
	return &addon.BlockedError{AgeRating: &age, AllowedAge: uc.cfg.AllowedAge}
}
