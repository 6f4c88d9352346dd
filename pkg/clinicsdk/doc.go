/*
Package clinicsdk holds the wire types of the clinic service and a small
client for talking to it.

# Requests

Every request type carries validator tags and is checked with Validate before
the service touches storage:

	req := clinicsdk.PatientSignUpRequest{FullName: "Aziz", PhoneNumber: "+998901234567", ...}
	if err := clinicsdk.Validate(req); err != nil {
		// err is a *ValidationError listing the offending JSON fields
	}

# Client

Client keeps refresh cookies in a cookie jar, so a sign-in followed by a
token refresh works the way a browser would:

	c, _ := clinicsdk.NewClient("http://localhost:8080")
	access, err := c.PatientSignIn(ctx, clinicsdk.PatientSignInRequest{...})
	fresh, err := c.Refresh(ctx, clinicsdk.KindPatient)

Non-2xx responses come back as *APIError carrying the status, the message and
the stable error code.
*/
package clinicsdk
