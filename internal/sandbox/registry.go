package sandbox

// Registry is the ordered set of live SimObjects. Insertion order is
// meaningful: the sync pass and removal both iterate in it. The registry is
// owned by the Loop; spawning appends through the Factory and removal goes
// through Loop.RemoveWhere.
type Registry struct {
	objects []*SimObject
}

func (r *Registry) Append(o *SimObject) {
	r.objects = append(r.objects, o)
}

func (r *Registry) Len() int { return len(r.objects) }

// Objects returns a copy of the registry in insertion order.
func (r *Registry) Objects() []*SimObject {
	out := make([]*SimObject, len(r.objects))
	copy(out, r.objects)
	return out
}

// CountTag returns how many objects carry the given tag.
func (r *Registry) CountTag(tag string) int {
	n := 0
	for _, o := range r.objects {
		if o.Tag == tag {
			n++
		}
	}
	return n
}

// takeWhere removes and returns every object matching the predicate. It
// collects first and compacts afterwards so a predicate can never cause
// elements to be skipped mid-iteration.
func (r *Registry) takeWhere(match func(*SimObject) bool) []*SimObject {
	var taken []*SimObject
	kept := r.objects[:0]
	for _, o := range r.objects {
		if match(o) {
			taken = append(taken, o)
		} else {
			kept = append(kept, o)
		}
	}
	for i := len(kept); i < len(r.objects); i++ {
		r.objects[i] = nil
	}
	r.objects = kept
	return taken
}
