// Package photos provides the HTTP client for the amphibian photo listing.
//
// # Overview
//
// The service exposes a single endpoint, GET <base_url>/photos, returning a JSON
// array of records:
//
//	[
//	  {
//	    "id": "1",
//	    "name": "Great Basin Spadefoot",
//	    "type": "Toad",
//	    "description": "This toad spends most of its life underground...",
//	    "img_src": "https://.../great-basin-spadefoot.png"
//	  }
//	]
//
// Unknown fields are ignored. A record missing id, name or img_src fails the
// whole fetch; partially decoded records are never returned.
//
// # Files
//
//   - client.go: Service interface, Client, request/response handling
//   - types.go: Photo record
//   - errors.go: TransportError and ProtocolError
//
// # Error Handling
//
// FetchPhotos distinguishes two failure classes so callers can tell them apart
// with IsTransport / IsProtocol:
//
//   - *TransportError: the request never produced a response (connection
//     refused, DNS, TLS, timeout, connection dropped mid-body)
//   - *ProtocolError: a response arrived but was unusable (non-2xx status,
//     malformed JSON, not an array, missing required fields)
//
// The client never retries and never caches.
//
// # Usage
//
//	client, err := photos.NewClient(cfg.BaseURL, photos.WithTimeout(cfg.RequestTimeout))
//	if err != nil {
//		return fmt.Errorf("init photos client: %w", err)
//	}
//	list, err := client.FetchPhotos(ctx)
package photos
