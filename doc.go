// IP Intel is a console tool to gather intelligence about IP addresses
// and domains.
//
// Idea is simple: you have a target like 8.8.8.8 or example.com. And
// you want to know who owns it, where it sits and what name it maps
// back to.
//
// Tool itself is organized into 3 logical parts:
//
// Intel
//
// intel is the main package of the application. It validates IP
// literals, expands domains into address sets, does reverse DNS and
// joins everything into a per-IP report.
//
// Providers
//
// This package has sources of geolocation intelligence. There is a
// single online provider backed by ip-api.com; each lookup is one HTTP
// request, nothing is cached or retried.
//
// Console
//
// The console package renders reports as themed key-value sections.
// The main package wires everything together and provides the CLI: a
// one-shot mode with a target argument and an interactive loop without
// one.
package main
