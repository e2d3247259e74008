/*

Package sender provides a client that sends metrics to a Graphite Carbon daemon
over a persistent TCP connection using the plaintext line protocol.

Each metric is transmitted as a single ASCII line of the form

	<key.path> <value> <unix_timestamp>\n

The client keeps one TCP connection open and reuses it across sends. When a
write fails, the stale connection is dropped, a new one is dialed, and the
connect+write attempt is repeated up to Config.Retries times before the error
is surfaced. The library never buffers metrics and never logs; every failure
is returned to the caller.

The target must be given as an IP literal. Hostnames are rejected at
construction time, before any network I/O.

Example

The following would send a single data point to a Carbon daemon listening on
the default plaintext port 2003:

	client, err := sender.NewClient(sender.Config{Address: "127.0.0.1", Port: 2003})
	if err != nil {
		// handle err
	}
	defer client.Close()

	err = client.Send(sender.NewMetric("app.requests.count", "42"))

*/
package sender
