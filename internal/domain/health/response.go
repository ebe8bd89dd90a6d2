package health

// Response is the outcome a probe reports: a name, a status, and optional
// data. Build one with Named, Up, or Down.
type Response struct {
	Name   string
	Status Status
	Data   *Data
}

// Up returns an UP response with no data.
func Up(name string) Response {
	return Response{Name: name, Status: StatusUp}
}

// Down returns a DOWN response with no data.
func Down(name string) Response {
	return Response{Name: name, Status: StatusDown}
}

// ResponseBuilder accumulates the parts of a Response.
//
//	health.Named("cache").State(err == nil).WithData("addr", addr).Build()
type ResponseBuilder struct {
	name   string
	status Status
	data   *Data
}

// Named starts a response builder for the given check name. The status
// defaults to DOWN until Up or State(true) is called.
func Named(name string) *ResponseBuilder {
	return &ResponseBuilder{name: name, status: StatusDown}
}

// Up marks the response UP.
func (b *ResponseBuilder) Up() *ResponseBuilder {
	b.status = StatusUp
	return b
}

// Down marks the response DOWN.
func (b *ResponseBuilder) Down() *ResponseBuilder {
	b.status = StatusDown
	return b
}

// State marks the response UP when up is true, DOWN otherwise.
func (b *ResponseBuilder) State(up bool) *ResponseBuilder {
	if up {
		return b.Up()
	}
	return b.Down()
}

// WithData appends a data entry.
func (b *ResponseBuilder) WithData(key, value string) *ResponseBuilder {
	if b.data == nil {
		b.data = &Data{}
	}
	b.data.Set(key, value)
	return b
}

// Build returns the Response. The builder's data is copied, so further
// WithData calls do not affect responses already built.
func (b *ResponseBuilder) Build() Response {
	return Response{
		Name:   b.name,
		Status: b.status,
		Data:   b.data.Clone(),
	}
}
