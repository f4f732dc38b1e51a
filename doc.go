// Package miniflux provides a Go client for the Miniflux feed-aggregation
// REST API.
//
// A client authenticates with either an API key or HTTP basic credentials
// and exposes one method per API operation. All calls are synchronous; the
// client holds no mutable state after construction and is safe for
// concurrent use.
//
// Basic usage:
//
//	client, err := miniflux.New("https://reader.example.org",
//	    miniflux.WithAPIKey("secret"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	feeds, err := client.Feeds(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, feed := range feeds {
//	    fmt.Println(feed.Title)
//	}
//
// Failed API calls return an *APIError carrying the HTTP status code and a
// reason extracted from the response body. Transport failures (timeouts,
// connection errors) are returned unmodified from the underlying
// http.Client.
package miniflux
