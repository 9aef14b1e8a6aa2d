package rnav

import (
	"time"

	"github.com/rohanthewiz/rnav/core/rtr"
	"github.com/sirupsen/logrus"
)

// Observer is notified after every navigation. Observers only watch:
// they run after the new resolution is current and cannot veto it.
type Observer func(NavigationEvent)

// NavigationEvent describes one completed navigation.
type NavigationEvent struct {
	Target  string // target as passed to Navigate
	Query   Query
	From    rtr.Resolution
	To      rtr.Resolution
	Elapsed time.Duration // time spent resolving
	Log     *logrus.Entry // the navigator's logger
}

// ResolveInfo is an observer logging basic navigation stats.
func ResolveInfo(ev NavigationEvent) {
	log := ev.Log
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}

	entry := log.WithFields(logrus.Fields{
		"from":    "/" + ev.From.Path,
		"to":      "/" + ev.To.Path,
		"status":  ev.To.Status.String(),
		"depth":   ev.To.Stack.Len(),
		"elapsed": ev.Elapsed.String(),
	})

	if ev.To.Status == rtr.StatusUnmatched {
		entry.WithField("failed_depth", ev.To.FailedDepth).Warn("navigation unmatched")
		return
	}
	entry.Info("navigated")
}
