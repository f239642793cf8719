package user

type FindByIDUserQuery struct {
	ID string
}

type FindByEmailUserQuery struct {
	Email string
}

type ListAllUserQuery struct{}
