package mvc

// Conventions is the default convention container. Actions of controllers
// that reference it borrow the responses of the template they match.
//
// Templates are never called.
type Conventions struct{}

//apiconv:produces 200
//apiconv:produces 404
//apiconv:match prefix
//apiconv:param id name=suffix type=any
func (Conventions) Get(id any) {}

//apiconv:produces 200
//apiconv:produces 404
//apiconv:match prefix
//apiconv:param id name=suffix type=any
func (Conventions) Find(id any) {}

//apiconv:produces 201
//apiconv:produces 400
//apiconv:match prefix
//apiconv:param model name=any type=any
func (Conventions) Post(model any) {}

//apiconv:produces 201
//apiconv:produces 400
//apiconv:match prefix
//apiconv:param model name=any type=any
func (Conventions) Create(model any) {}

//apiconv:produces 204
//apiconv:produces 404
//apiconv:produces 400
//apiconv:match prefix
//apiconv:param id name=suffix type=any
//apiconv:param model name=any type=any
func (Conventions) Put(id any, model any) {}

//apiconv:produces 204
//apiconv:produces 404
//apiconv:produces 400
//apiconv:match prefix
//apiconv:param id name=suffix type=any
//apiconv:param model name=any type=any
func (Conventions) Edit(id any, model any) {}

//apiconv:produces 204
//apiconv:produces 404
//apiconv:produces 400
//apiconv:match prefix
//apiconv:param id name=suffix type=any
//apiconv:param model name=any type=any
func (Conventions) Update(id any, model any) {}

//apiconv:produces 200
//apiconv:produces 404
//apiconv:produces 400
//apiconv:match prefix
//apiconv:param id name=suffix type=any
func (Conventions) Delete(id any) {}
