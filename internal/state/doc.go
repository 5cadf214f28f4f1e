// Package state holds the client-side session state: the signed-in
// user, the friend graph, the viewed friend's profile, and the two
// gift sort preferences. Collections are replaced wholesale after each
// mutation from freshly fetched server data; the store never patches
// entities in place.
package state
