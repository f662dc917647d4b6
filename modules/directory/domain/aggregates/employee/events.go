package employee

func NewCreatedEvent(result Employee) *CreatedEvent {
	return &CreatedEvent{Result: result}
}

func NewUpdatedEvent(result Employee) *UpdatedEvent {
	return &UpdatedEvent{Result: result}
}

func NewDeletedEvent(result Employee) *DeletedEvent {
	return &DeletedEvent{Result: result}
}

type CreatedEvent struct {
	Result Employee
}

type UpdatedEvent struct {
	Result Employee
}

type DeletedEvent struct {
	Result Employee
}
