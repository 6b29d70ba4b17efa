// Package rxhttp adapts blocking, chunked HTTP interactions against a
// REST-style API into cancellable push-based sequences.
//
// Every operation performs exactly one network call per subscription and
// delivers its outcome through a stream.Observable: zero or more elements
// followed by completion, exactly one typed error, or silence after the
// consumer unsubscribes. How response bytes become elements is decided by the
// transformer the operation was built with: whole-body single values, ordered
// collections, line-delimited streams, or raw binary chunks.
//
// # Basic Usage
//
//	client, err := rxhttp.New(rxhttp.Config{
//	    BaseURL: "http://localhost:2375",
//	})
//
//	sub := client.Get(ctx, "/info").Subscribe(stream.Observer[string]{
//	    OnNext:  func(body string) { fmt.Println(body) },
//	    OnError: func(err error) { log.Println(err) },
//	})
//
// # Streaming
//
//	logs := client.PostAndReceiveStream(ctx, "/build", rxhttp.WithBody(payload))
//	for item := range logs.Chan(ctx) {
//	    if item.Err != nil {
//	        return item.Err
//	    }
//	    fmt.Println(item.Value)
//	}
//
// Failures carry a typed *Error distinguishing caller misuse, connectivity
// faults, non-success statuses from a reachable server, and in-band error
// lines on multiplexed streams. Retries, redirects, and connection-pool
// tuning are deliberately out of scope; they belong to the transport or a
// higher layer.
package rxhttp
