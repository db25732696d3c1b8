package main

import (
	"cdms/internal/dto"

	"github.com/spf13/cobra"
)

// customerFlags binds the record form fields to command flags
type customerFlags struct {
	firstName string
	lastName  string
	email     string
	phone     string
	state     string
	amount    string
}

func (f *customerFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.firstName, "first-name", "", "first name")
	cmd.Flags().StringVar(&f.lastName, "last-name", "", "last name")
	cmd.Flags().StringVar(&f.email, "email", "", "email address (local@domain.tld)")
	cmd.Flags().StringVar(&f.phone, "phone", "", "phone number, exactly 10 digits")
	cmd.Flags().StringVar(&f.state, "state", "", "state (region)")
	cmd.Flags().StringVar(&f.amount, "amount", "", "purchase amount, e.g. 149.99")
}

func (f *customerFlags) request() *dto.CustomerRequest {
	return &dto.CustomerRequest{
		FirstName:      f.firstName,
		LastName:       f.lastName,
		Email:          f.email,
		Phone:          f.phone,
		State:          f.state,
		PurchaseAmount: f.amount,
	}
}

// overlay copies the flags the user actually set onto req
func (f *customerFlags) overlay(cmd *cobra.Command, req *dto.CustomerRequest) {
	changed := cmd.Flags().Changed
	if changed("first-name") {
		req.FirstName = f.firstName
	}
	if changed("last-name") {
		req.LastName = f.lastName
	}
	if changed("email") {
		req.Email = f.email
	}
	if changed("phone") {
		req.Phone = f.phone
	}
	if changed("state") {
		req.State = f.state
	}
	if changed("amount") {
		req.PurchaseAmount = f.amount
	}
}
