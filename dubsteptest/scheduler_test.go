package dubsteptest

import (
	"testing"
	"time"

	"github.com/librescoot/dubstep"
	"github.com/stretchr/testify/assert"
)

var _ dubstep.Scheduler = (*Scheduler)(nil)

func TestAdvanceFiresInDueOrder(t *testing.T) {
	s := NewScheduler()
	var fired []string

	s.ScheduleOnce(30*time.Millisecond, func() { fired = append(fired, "late") })
	s.ScheduleOnce(10*time.Millisecond, func() { fired = append(fired, "early") })
	s.ScheduleOnce(10*time.Millisecond, func() { fired = append(fired, "early-second") })

	s.Advance(20 * time.Millisecond)
	assert.Equal(t, []string{"early", "early-second"}, fired)
	assert.Equal(t, 20*time.Millisecond, s.Now())

	s.Advance(10 * time.Millisecond)
	assert.Equal(t, []string{"early", "early-second", "late"}, fired)
	assert.Equal(t, 0, s.Pending())
}

func TestRepeatingUntilCancelled(t *testing.T) {
	s := NewScheduler()
	var n int

	h := s.ScheduleRepeating(10*time.Millisecond, func() { n++ })
	s.Advance(35 * time.Millisecond)
	assert.Equal(t, 3, n)
	assert.True(t, s.Active(h))

	s.Cancel(h)
	assert.False(t, s.Active(h))
	s.Advance(time.Second)
	assert.Equal(t, 3, n)
}

func TestCallbackCancelsSibling(t *testing.T) {
	s := NewScheduler()
	var fired bool

	second := s.ScheduleOnce(20*time.Millisecond, func() { fired = true })
	s.ScheduleOnce(10*time.Millisecond, func() { s.Cancel(second) })

	s.Advance(time.Second)
	assert.False(t, fired)
	assert.Equal(t, time.Second, s.Now())
}

func TestRefusesZeroInterval(t *testing.T) {
	s := NewScheduler()
	h := s.ScheduleRepeating(0, func() {})
	assert.Equal(t, dubstep.Handle(0), h)
	assert.False(t, s.Active(h))
}

func TestRecorder(t *testing.T) {
	r := &Recorder{}
	hooks := r.Hooks()

	hooks.OnBeforeChange(0)
	hooks.OnNext()
	hooks.OnChange(1)
	hooks.OnPlay()

	assert.Equal(t, []string{HookBeforeChange, HookNext, HookChange, HookPlay}, r.Names())
	assert.Equal(t, Call{Hook: HookChange, Step: 1}, r.Calls()[2])
	assert.Equal(t, 1, r.Count(HookNext))

	r.Reset()
	assert.Empty(t, r.Names())
}
