package bf

// Program - compiled source: only command bytes are kept and every bracket
// knows the index of its partner.
type Program struct {
	code []byte
	jump []int
}

// Len - number of instructions.
func (p Program) Len() int { return len(p.code) }

// Compile - strips comments and matches brackets.
// positions in errors are byte offsets into src.
func Compile(src string) (Program, error) {
	p := Program{}
	var open []int // indexes into p.code
	var openPos []int
	for pos := 0; pos < len(src); pos++ {
		c := src[pos]
		switch c {
		case '>', '<', '+', '-', '.', ',':
		case '[':
			open = append(open, len(p.code))
			openPos = append(openPos, pos)
		case ']':
			if len(open) == 0 {
				return Program{}, newUnmatchedCloseError(pos)
			}
			start := open[len(open)-1]
			open = open[:len(open)-1]
			openPos = openPos[:len(openPos)-1]
			p.jump[start] = len(p.code)
			p.code = append(p.code, c)
			p.jump = append(p.jump, start)
			continue
		default:
			continue
		}
		p.code = append(p.code, c)
		p.jump = append(p.jump, -1)
	}
	if len(openPos) > 0 {
		return Program{}, newUnmatchedOpenError(openPos[len(openPos)-1])
	}
	return p, nil
}
