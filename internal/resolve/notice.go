// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package resolve

import "github.com/MKhiriev/pyconfig/internal/logger"

// Notifier is the deprecation-notice collaborator: a side-effecting
// sink for one-time warnings shown to the page author.
type Notifier interface {
	Deprecated(message string)
}

// logNotifier reports deprecations through the resolver's logger.
type logNotifier struct {
	log *logger.Logger
}

func (n *logNotifier) Deprecated(message string) {
	n.log.Warn().Msg(message)
}

// onceNotifier forwards only the first notice of a resolution pass, so
// a deprecated key supplied by both the external and the inline source
// still produces a single warning.
type onceNotifier struct {
	next  Notifier
	fired bool
}

func newOnce(next Notifier) *onceNotifier {
	return &onceNotifier{next: next}
}

func (n *onceNotifier) Deprecated(message string) {
	if n.fired {
		return
	}
	n.fired = true
	n.next.Deprecated(message)
}
