// Package mepost provides a Go client SDK for the Mepost email API:
// sending domains, subscriber groups, transactional and marketing messages,
// and dedicated outbound IPs.
//
// Every Client method issues exactly one HTTP request and returns the
// decoded {data, error} envelope as a *Response. Nothing is retried, cached
// or paginated behind your back.
//
// Basic usage:
//
//	client, err := mepost.New("your-api-key")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	resp, err := client.SendTransactional(ctx, mepost.SendTransactionalRequest{
//	    FromEmail: "noreply@example.com",
//	    FromName:  "Example",
//	    Subject:   "Welcome",
//	    HTML:      "<p>Hello {{name}}</p>",
//	    To: []mepost.Recipient{
//	        {Email: "user@example.com", Name: "User"},
//	    },
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Schedule:", resp.Data.UUID)
//
// Errors are *APIError for non-2xx responses, *NetworkError for transport
// failures and *DecodeError for malformed bodies. Use errors.Is with the
// sentinel errors (ErrUnauthorized, ErrGroupNotFound, ...) to branch on them.
package mepost
