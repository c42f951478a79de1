package gauge

type OpKind string

const (
	OpClear  OpKind = "clear"
	OpLine   OpKind = "line"
	OpCircle OpKind = "circle"
	OpArc    OpKind = "arc"
	OpText   OpKind = "text"
)

// Op is one recorded drawing call.
type Op struct {
	Kind  OpKind  `yaml:"kind"`
	From  Point   `yaml:"from,omitempty"`
	To    Point   `yaml:"to,omitempty"`
	R     float64 `yaml:"r,omitempty"`
	Oval  Rect    `yaml:"oval,omitempty"`
	Start float64 `yaml:"start,omitempty"`
	Sweep float64 `yaml:"sweep,omitempty"`
	Text  string  `yaml:"text,omitempty"`
	Paint Paint   `yaml:"paint,omitempty"`
}

// Recorder is a Surface that keeps every call instead of drawing it.
// Font metrics are approximated as 0.8/0.2 of the text size.
type Recorder struct {
	ops []Op
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Clear() {
	r.ops = append(r.ops[:0], Op{Kind: OpClear})
}

func (r *Recorder) Line(x1, y1, x2, y2 float64, p Paint) {
	r.ops = append(r.ops, Op{Kind: OpLine, From: Point{x1, y1}, To: Point{x2, y2}, Paint: p})
}

func (r *Recorder) Circle(cx, cy, rad float64, p Paint) {
	r.ops = append(r.ops, Op{Kind: OpCircle, From: Point{cx, cy}, R: rad, Paint: p})
}

func (r *Recorder) Arc(oval Rect, start, sweep float64, p Paint) {
	r.ops = append(r.ops, Op{Kind: OpArc, Oval: oval, Start: start, Sweep: sweep, Paint: p})
}

func (r *Recorder) Text(s string, x, y float64, p Paint) {
	r.ops = append(r.ops, Op{Kind: OpText, From: Point{x, y}, Text: s, Paint: p})
}

func (r *Recorder) FontMetrics(size float64) (float64, float64) {
	return size * 0.8, size * 0.2
}

func (r *Recorder) Ops() []Op {
	return r.ops
}

// Kind returns the recorded calls of kind k in drawing order.
func (r *Recorder) Kind(k OpKind) []Op {
	var out []Op
	for _, op := range r.ops {
		if op.Kind == k {
			out = append(out, op)
		}
	}
	return out
}
