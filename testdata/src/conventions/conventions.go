package conventions

import "github.com/mpyw/apiconv/mvc"

type Order struct {
	ID int
}

type Problem struct {
	Detail string
}

//apiconv:controller
//apiconv:conventions github.com/mpyw/apiconv/mvc.Conventions
type OrderController struct { // want OrderController:"apiconv:controller; apiconv:conventions github.com/mpyw/apiconv/mvc.Conventions"
	mvc.Controller
}

func (c *OrderController) GetOrder(orderID int) (mvc.Of[Order], error) {
	if orderID == 0 {
		return c.NotFound(), nil
	}
	return Order{ID: orderID}, nil
}

func (c *OrderController) GetByID(ID int) (mvc.Of[Order], error) {
	if ID == 0 {
		return c.NotFound(), nil
	}
	return Order{ID: ID}, nil
}

func (c *OrderController) FindOrder(id int) (mvc.Of[Order], error) { // want "action documents status code 404 but never returns it"
	return Order{ID: id}, nil
}

func (c *OrderController) CreateOrder(order Order) (mvc.Of[Order], error) {
	if order.ID != 0 {
		return c.BadRequest(nil), nil
	}
	return c.Created("/orders/1", order), nil
}

func (c *OrderController) PostOrder(order Order) (mvc.Of[Order], error) { // want "action documents status code 400 but never returns it"
	return order, nil
}

func (c *OrderController) UpdateOrder(id int, order Order) (mvc.Of[Order], error) { // want "action documents status code 404 but never returns it" "action documents status code 400 but never returns it"
	return c.NoContent(), nil
}

func (c *OrderController) DeleteOrder(id int) (mvc.Of[Order], error) { // want "action documents status code 200 but never returns it"
	if id < 0 {
		return c.BadRequest(nil), nil
	}
	if id == 0 {
		return c.NotFound(), nil
	}
	return c.Conflict(nil), nil // want "action returns undocumented status code 409"
}

// GetArchived overrides the payload of the conventional 404.
//
//apiconv:produces 404 Problem
func (c *OrderController) GetArchived(id int) (mvc.Of[Order], error) { // want GetArchived:"apiconv:produces 404 Problem"
	if id == 0 {
		return c.NotFound(), nil
	}
	return Order{}, nil
}

func (c *OrderController) Getaway() (mvc.Of[Order], error) {
	return Order{}, nil // want "action returns a success result without documenting status code 200 or 201"
}

func (c *OrderController) GetByPaid(paid int) (mvc.Of[Order], error) {
	return Order{}, nil // want "action returns a success result without documenting status code 200 or 201"
}

//apiconv:conventionmethod github.com/mpyw/apiconv/mvc.Conventions.Delete
func (c *OrderController) Archive(id int) (mvc.Of[Order], error) { // want Archive:"apiconv:conventionmethod github.com/mpyw/apiconv/mvc.Conventions.Delete" "action documents status code 404 but never returns it" "action documents status code 400 but never returns it"
	return c.OK(nil), nil
}

// ReportConventions is a convention container of this package.
type ReportConventions struct{}

//apiconv:produces 202
//apiconv:match suffix
func (ReportConventions) Export() {} // want Export:"apiconv:produces 202; apiconv:match suffix"

//apiconv:produces 200
//apiconv:match prefix
//apiconv:param args type=any
func (ReportConventions) List(args ...any) {} // want List:"apiconv:produces 200; apiconv:match prefix; apiconv:param args type=any"

//apiconv:controller
//apiconv:conventions ReportConventions
type ReportController struct { // want ReportController:"apiconv:controller; apiconv:conventions ReportConventions"
	mvc.Controller
}

func (c *ReportController) MonthlyExport() (mvc.Of[Order], error) {
	return c.Accepted(nil), nil
}

func (c *ReportController) ListReports(year, month int) (mvc.Of[[]Order], error) {
	return c.OK(nil), nil
}

func (c *ReportController) Exporter() (mvc.Of[Order], error) {
	return c.Accepted(nil), nil // want "action returns undocumented status code 202"
}
