package auth

import "github.com/puoklam/lab-app-backend/db/model"

type OutMember struct {
	model.Base
	Name               string                   `json:"name"`
	Email              string                   `json:"email"`
	RegistrationStatus model.RegistrationStatus `json:"registration_status"`
}

type OutSignin struct {
	AccessToken string    `json:"access_token"`
	Member      OutMember `json:"member"`
}
