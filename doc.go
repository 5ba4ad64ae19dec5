// Package tokenmint issues and verifies signed JWTs for authentication
// testing and mock-identity generation. It abstracts HMAC and RSA
// signing behind one Key type and a value-semantics Builder, so tokens
// can be minted singly or in batches without handling algorithm
// specific key material directly.
//
// Keys:
//   - GenerateKey sizes material from the algorithm's minimum strength:
//     strength/8 secret bytes for HMAC tiers, a matching modulus for
//     RSA tiers. KeyFromSecret and KeyFromRSAPrivate wrap existing
//     material; a family mismatch is caught when the key is used, not
//     when it is wrapped.
//
// Minting:
//   - Builder setters each return an updated copy, so configurations
//     branch from a shared prefix without cross-mutation. Generate
//     mints count tokens, each with fresh timestamps and a fresh jti.
//     Without an explicit key, every token in a batch is signed with
//     its own independently generated key and cannot be verified later.
//
// Verification:
//   - Verify requires a configured key, enforces the configured
//     algorithm and a present, unexpired exp claim, and preserves
//     unknown claims in Claims.Extra. MultiVerifier composes several
//     keyed builders for rotation scenarios.
package tokenmint
