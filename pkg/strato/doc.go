// Package strato provides the public types and configuration for the Strato
// cloud API client.
//
// The package defines the resource model (servers, floating IPs, SSH keys,
// volumes, networks, images, actions), the query parameter builder, the error
// taxonomy, and the Client interface implemented by internal/client. Most
// programs construct a client once at startup:
//
//	client, err := stratoclient.New(&strato.Config{
//		Endpoint: "https://api.strato.example",
//		Token:    os.Getenv("STRATO_TOKEN"),
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	servers, err := client.Servers().List(ctx, strato.NewListOpts().WithFilter("name", "web-1"))
//
// Mutating calls return the affected resource; calls that start server-side
// work additionally carry an Action reference that can be driven to
// completion with client.Actions().Wait.
package strato
