package mars

// Warrior is a loaded Redcode program plus its runtime task queue.
// Instructions is addressed relative to the warrior's own origin (0,0); the
// scheduler translates to absolute Core coordinates via Origin.
type Warrior struct {
	Name     string
	Author   string
	Date     string
	Version  string
	Strategy string

	// Instructions is a mapping from Point to Instruction, keyed by
	// position relative to the warrior's own origin (0,0). Positions may
	// be negative, and the program may occupy an arbitrary, non-
	// contiguous 2-D shape — the real layout the stepping-driven parser
	// produces (ORG/step modifiers can place cells off-axis or behind the
	// origin), not just a 0..n-1 run. spec.md §3/§6 and the External
	// Interfaces both specify `instructions: map<Point, Instruction>`.
	Instructions map[Point]Instruction

	// Start is the program's entry offset relative to origin (0,0), as
	// resolved by the parser (ORG, or 0 if unspecified).
	Start Point

	// Origin is the absolute Core point this warrior's (0,0) was written
	// to. Set by the loader; the cell at relative position p lives at
	// Origin + p, and the warrior's first task is Origin + Start.
	Origin Point

	// TaskQueue holds the absolute Core points of this warrior's live
	// processes, oldest-first. The head is the next point to execute;
	// spec.md's round-robin scheduler pops it, runs it, and (unless the
	// process died or SPL'd it away) pushes the successor to the tail.
	TaskQueue []Point

	// Alive reports whether this warrior still has at least one queued
	// task. A warrior whose queue empties is dead and is skipped by the
	// scheduler for the remainder of the match.
	Alive bool
}

// NewWarrior constructs a Warrior with an empty task queue; callers load it
// into a Core and call Spawn to seed its first task.
func NewWarrior(name string, instructions map[Point]Instruction) *Warrior {
	return &Warrior{
		Name:         name,
		Instructions: instructions,
		Alive:        true,
	}
}

// Linear builds an instructions map for the common straight-line program:
// cells[i] is placed at relative position (i, 0). Warriors with an off-axis
// or negative layout (what a real ORG/stepping-driven parse can produce)
// build their map directly instead of going through Linear.
func Linear(cells ...Instruction) map[Point]Instruction {
	m := make(map[Point]Instruction, len(cells))
	for i, c := range cells {
		m[Pt(i)] = c
	}
	return m
}

// Spawn pushes a new task at p onto the tail of the queue. The loader uses
// it for the warrior's initial process; the scheduler enqueues successors,
// SPL's included, with PushTask.
func (w *Warrior) Spawn(p Point) {
	w.TaskQueue = append(w.TaskQueue, p)
	w.Alive = true
}

// PopTask removes and returns the task at the head of the queue. The
// caller (the scheduler) is responsible for re-enqueueing it (or not) once
// the step outcome is known.
func (w *Warrior) PopTask() (Point, bool) {
	if len(w.TaskQueue) == 0 {
		w.Alive = false
		return Point{}, false
	}
	p := w.TaskQueue[0]
	w.TaskQueue = w.TaskQueue[1:]
	if len(w.TaskQueue) == 0 {
		w.Alive = false
	}
	return p, true
}

// PushTask appends p to the tail of the queue, reviving the warrior if it
// had gone quiet.
func (w *Warrior) PushTask(p Point) {
	w.TaskQueue = append(w.TaskQueue, p)
	w.Alive = true
}

// TaskCount reports the number of live processes; a count of zero means
// the warrior is dead.
func (w *Warrior) TaskCount() int {
	return len(w.TaskQueue)
}
