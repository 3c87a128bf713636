package engine

// ScheduledPayload is an opaque tag a logic kind attaches to a scheduled
// update; kinds that only ever schedule one kind of follow-up (torch,
// comparator, observer...) can leave it empty.
type ScheduledPayload struct {
	Kind string
}

type scheduleEntry struct {
	pos      Vec2i
	dueTick  uint64
	priority int
	payload  ScheduledPayload
	seq      uint64 // insertion order tie-break, stabilizes iteration only
}

// scheduler is the unordered collection of {pos, dueTick, priority,
// payload} entries described in spec §4.1. Priority is accepted but not
// used for ordering; insertion order is the de-facto tie-break, which we
// make explicit and deterministic via seq rather than relying on Go's
// randomized map iteration.
type scheduler struct {
	entries []scheduleEntry
	nextSeq uint64
}

func newScheduler() *scheduler {
	return &scheduler{}
}

// schedule enqueues payload to fire at (nowTick + delayTicks). A delay of
// 0 fires on the next tick() call, never within the current call.
func (s *scheduler) schedule(pos Vec2i, nowTick uint64, delayTicks uint64, priority int, payload ScheduledPayload) {
	s.entries = append(s.entries, scheduleEntry{
		pos:      pos,
		dueTick:  nowTick + delayTicks,
		priority: priority,
		payload:  payload,
		seq:      s.nextSeq,
	})
	s.nextSeq++
}

// drain removes and returns, in insertion order, every entry with
// dueTick <= now.
func (s *scheduler) drain(now uint64) []scheduleEntry {
	var due []scheduleEntry
	var remain []scheduleEntry
	for _, e := range s.entries {
		if e.dueTick <= now {
			due = append(due, e)
		} else {
			remain = append(remain, e)
		}
	}
	s.entries = remain
	// entries were appended in schedule() call order within a given
	// drain batch already; stableSortBySeq guards against any future
	// reordering of s.entries (e.g. compaction) without changing
	// observed behavior on current fixtures.
	stableSortBySeq(due)
	return due
}

func stableSortBySeq(es []scheduleEntry) {
	for i := 1; i < len(es); i++ {
		for j := i; j > 0 && es[j].seq < es[j-1].seq; j-- {
			es[j], es[j-1] = es[j-1], es[j]
		}
	}
}
