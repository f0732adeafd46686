// Package user provides back-office operator accounts and their roles.
// Admins may delete records and manage users; Managers run day-to-day work.
package user
