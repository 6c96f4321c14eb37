package mvc

// Controller is embedded by API controllers for its result helpers.
type Controller struct{}

func (Controller) OK(v any) OKResult { return OKResult{Value: v} }

func (Controller) Created(location string, v any) CreatedResult {
	return CreatedResult{Location: location, Value: v}
}

func (Controller) Accepted(v any) AcceptedResult { return AcceptedResult{Value: v} }

func (Controller) NoContent() NoContentResult { return NoContentResult{} }

func (Controller) BadRequest(v any) BadRequestResult { return BadRequestResult{Value: v} }

func (Controller) Unauthorized() UnauthorizedResult { return UnauthorizedResult{} }

func (Controller) Forbidden() ForbiddenResult { return ForbiddenResult{} }

func (Controller) NotFound() NotFoundResult { return NotFoundResult{} }

func (Controller) Conflict(v any) ConflictResult { return ConflictResult{Value: v} }

func (Controller) UnprocessableEntity(v any) UnprocessableEntityResult {
	return UnprocessableEntityResult{Value: v}
}

func (Controller) StatusCode(code int) StatusCodeResult { return StatusCodeResult{Code: code} }

func (Controller) Object(code int, v any) ObjectResult { return ObjectResult{Code: code, Value: v} }
