package fieldschema

// Assert panics when cond is false. It marks programmer errors, bugs in
// caller usage or in the library itself, as opposed to data-dependent
// validation failures which are always returned as messages. Callers may
// use it for their own invariant checks.
func Assert(cond bool, msg ...string) {
	if cond {
		return
	}
	m := "assertion failed"
	if len(msg) > 0 && msg[0] != "" {
		m = msg[0]
	}
	panic(m)
}
