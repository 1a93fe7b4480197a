package background

import (
	log "github.com/sirupsen/logrus"
)

// CountResponseGiven is a background job to bump the responses-given
// counter of an account profile after a response append succeeded. The
// queue retries it, so the update is at least once; the counter is a
// display statistic and tolerates that.
func (m *BackgroundManager) CountResponseGiven(accountNumber string) error {
	if err := m.store.IncrementResponsesGiven(accountNumber); err != nil {
		log.WithFields(log.Fields{
			"prefix":         "background",
			"account_number": accountNumber,
			"error":          err,
		}).Error("count response given")
		return err
	}
	return nil
}

// ReconcileResponseCounts is a background job that rewrites every cached
// response_count to the length of the embedded response array.
func (m *BackgroundManager) ReconcileResponseCounts() error {
	modified, err := m.mongo.ReconcileResponseCounts()
	if err != nil {
		return err
	}

	log.WithFields(log.Fields{
		"prefix":   "background",
		"modified": modified,
	}).Info("reconciled response counts")

	return nil
}
