// Package client provides access to a remote data server over HTTP.
//
// The package focuses on:
//   - Invoking the store operations of named datasets on a data server
//   - Distributing requests round-robin over multiple endpoints
//   - Encoding requests with any codec the server understands
//   - The voter registration workflow built on top of the raw store
//
// Key Components:
//   - Client: the low-level data client. It speaks the message protocol of
//     the api/common package and exposes one method per store operation.
//   - RegistrationClient: the registration workflow. It validates, stamps
//     and (de)serializes model.Registration documents and maps the workflow
//     verbs (submit, status, update, cancel, list) onto store operations.
//
// Usage Example:
//
//	c, err := client.NewClient(common.ClientConfig{
//		Endpoints:     []string{"http://localhost:8080"},
//		TimeoutSecond: 10,
//		RetryCount:    3,
//	}, codec.NewJSONCodec())
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer c.Close()
//
//	reg := client.NewRegistrationClient(c, "")
//	trackingID, err := reg.Submit(&model.Registration{ ... })
package client
