package services

// LoginForm is the sign-in form.
type LoginForm struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SignUpForm is the account creation form.
type SignUpForm struct {
	Name            string `json:"name" validate:"notblank,max=64"`
	Email           string `json:"email" validate:"required,email"`
	Phone           string `json:"phone" validate:"omitempty,phone"`
	Password        string `json:"password" validate:"required,pwd"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
}
