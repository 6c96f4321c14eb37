package mvc

type Of[T any] interface{}

type Controller struct{}

//apiconv:status 200
type OKResult struct{}

//apiconv:status 404
type NotFoundResult struct{}

func (Controller) OK() OKResult { return OKResult{} }

func (Controller) NotFound() NotFoundResult { return NotFoundResult{} }

type Conventions struct{}

//apiconv:produces 200
//apiconv:produces 404
//apiconv:match prefix
//apiconv:param id name=suffix type=any
func (Conventions) Get(id any) {}
