package tas

// priorityTagMask extracts a priority class from a socket-priority tag's
// low three bits. A mask of (TotalQosTags*2-1) would admit tag values 8..15
// that address no real queue; 0x07 is the only mask this package uses.
const priorityTagMask = TotalQosTags - 1 // 0x07

// ChainClassifiers composes classifiers into a single Classifier that
// tries each in order, using the first match.
func ChainClassifiers(chain ...Classifier) Classifier {
	return ClassifierFunc(func(item Item) (int, bool) {
		for _, c := range chain {
			if c == nil {
				continue
			}
			if class, ok := c.Classify(item); ok {
				return class, true
			}
		}
		return 0, false
	})
}

// classify implements enqueue-path priority selection: when trustQostag is
// set and the item carries a priority tag, the tag is used directly and the
// classifier chain is never consulted. Otherwise the classifier chain runs
// first, falling back to any priority tag, and finally to queue 0. An
// out-of-range class from the classifier chain is coerced to queue 0 and
// logged here, at the one site that still has the raw, pre-coercion value.
func classify(item Item, classifier Classifier, trustQostag bool, log *Logger) (class int, usedTag bool) {
	if trustQostag {
		if tagged, ok := item.(Tagged); ok {
			if tag, ok := tagged.PriorityTag(); ok {
				return tag & priorityTagMask, true
			}
		}
	}

	if classifier != nil {
		if v, matched := classifier.Classify(item); matched {
			if v >= 0 && v < TotalQosTags {
				return v, false
			}
			warnClassifierAnomaly(log, v)
			return 0, false
		}
	}

	if tagged, ok := item.(Tagged); ok {
		if tag, ok := tagged.PriorityTag(); ok {
			return tag & priorityTagMask, true
		}
	}

	return 0, false
}
