package inflation

import "time"

// Observer receives change notifications from the evaluation-date provider
// and from external fixing publications.
type Observer interface {
	Update()
}

// settings holds the process-wide evaluation date and the notification
// registries. All access is single-threaded by contract; callers must
// serialize writes.
var settings = struct {
	evaluationDate  time.Time
	observers       []Observer
	fixingObservers map[string][]Observer
}{
	fixingObservers: make(map[string][]Observer),
}

// EvaluationDate returns the process-wide "as of" date. If none was set,
// it defaults to the current UTC date.
func EvaluationDate() time.Time {
	if settings.evaluationDate.IsZero() {
		now := time.Now().UTC()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	}
	return settings.evaluationDate
}

// SetEvaluationDate changes the process-wide evaluation date and notifies
// every registered observer.
func SetEvaluationDate(d time.Time) {
	settings.evaluationDate = time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
	for _, o := range settings.observers {
		o.Update()
	}
}

// RegisterObserver subscribes o to evaluation-date changes.
func RegisterObserver(o Observer) {
	settings.observers = append(settings.observers, o)
}

// RegisterFixingObserver subscribes o to external fixing publications for
// the named index.
func RegisterFixingObserver(indexName string, o Observer) {
	settings.fixingObservers[indexName] = append(settings.fixingObservers[indexName], o)
}

// NotifyFixingPublished signals that a fixing for the named index was
// published externally.
func NotifyFixingPublished(indexName string) {
	for _, o := range settings.fixingObservers[indexName] {
		o.Update()
	}
}
