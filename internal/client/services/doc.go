// Package services contains the application services behind the signon
// terminal shell: account lifecycle (onboarding, login, signup, profile,
// logout, reset, admin unlock) and translation runs that land in history.
//
// Services persist through store.Store and never touch the session machine;
// the shell tells the machine about a change once the service call returns
// without error.
package services
