// Package recording captures the backend calls made while drawing
// rectangles so they can be inspected or replayed later.
//
// A Recorder implements ggrect.Backend. Instead of rasterizing it stores
// every SetColor and TriList call as a typed command; triangle vertices
// are copied into one shared vertex slab that commands reference by
// range. FinishRecording returns an immutable Recording:
//
//	rec := recording.NewRecorder()
//	style.Draw(r, ggrect.Identity(), rec)
//	rc := rec.FinishRecording()
//
//	fmt.Println(rc.Triangles())  // number of triangles drawn
//	err := rc.Playback(rasterBackend)
//
// Recordings are useful in tests, for deferring drawing to another
// goroutine that owns the real backend, and for replaying the same frame
// to several backends.
package recording
