// Package relay implements the Sign in with Apple redirect relay.
//
// Apple posts the authorization response (code, id_token, state) to a public
// HTTPS endpoint. The relay turns that post into a 302 to the app's own
// callback URL with the values as query parameters. Incomplete posts are
// sent to "/".
package relay
