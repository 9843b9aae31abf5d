/*
Package hostmock provides a pretend host for waPC calls.

It is intended for SDK development and tests that need to validate exactly
what a component sends across the host boundary, without a real host runtime
behind it.

Why use hostmock?

  - Validate routing: ensure calls use the expected namespace, capability, and function when you set them.
  - Inspect payloads: plug in a PayloadValidator to assert envelope contents.
  - Script responses: return custom bytes or simulate failures.
  - Count calls: the Calls field records every invocation, so tests can also
    assert that no host call happened at all.

Quick start

	m, _ := hostmock.New(hostmock.Config{
	  ExpectedNamespace:  "hostbridge",
	  ExpectedCapability: "logging",
	  ExpectedFunction:   "emit",
	  PayloadValidator: func(p []byte) error {
	    // Unmarshal and assert fields here
	    return nil
	  },
	})

	// Inject into a component under test
	resp, err := m.HostCall("hostbridge", "logging", "emit", payload)

Behavior

  - If Fail is true and Error is set, HostCall returns that error.
  - If Fail is true and Error is nil, HostCall returns ErrOperationFailed.
  - Otherwise, HostCall enforces ExpectedNamespace/Capability/Function and runs
    PayloadValidator when provided. If everything is in order, Response (when set)
    provides the return bytes; otherwise it returns nil.

Leave fields blank when you want a wildcard; hostmock only enforces values
you set.
*/
package hostmock
