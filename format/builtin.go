package format

const digits = "0123456789"

func boolSize(b bool) int {
	if b {
		return len("true")
	}
	return len("false")
}

func writeBool(s Sink, b bool) {
	if b {
		s.AppendString("true")
	} else {
		s.AppendString("false")
	}
}

func uintSize(u uint64) int {
	n := 1
	for u >= 10 {
		u /= 10
		n++
	}
	return n
}

// writeUint extracts digits least significant first onto a stack and pops
// them back out most significant first.
func writeUint(s Sink, u uint64) {
	var stack [20]byte
	top := 0
	for {
		stack[top] = digits[u%10]
		top++
		u /= 10
		if u == 0 {
			break
		}
	}
	for top > 0 {
		top--
		s.AppendByte(stack[top])
	}
}

// magnitude returns |i| as a uint64, which also covers math.MinInt64.
func magnitude(i int64) (uint64, bool) {
	if i < 0 {
		return ^uint64(i) + 1, true
	}
	return uint64(i), false
}

func intSize(i int64) int {
	u, neg := magnitude(i)
	if neg {
		return 1 + uintSize(u)
	}
	return uintSize(u)
}

func writeInt(s Sink, i int64) {
	u, neg := magnitude(i)
	if neg {
		s.AppendByte('-')
	}
	writeUint(s, u)
}
