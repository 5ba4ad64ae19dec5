package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	tokenmint "github.com/goliatone/go-tokenmint"
)

type claimFlags []string

func (c *claimFlags) String() string {
	return strings.Join(*c, ",")
}

func (c *claimFlags) Set(value string) error {
	if !strings.Contains(value, "=") {
		return fmt.Errorf("claim %q must be name=value", value)
	}
	*c = append(*c, value)
	return nil
}

func main() {
	var claims claimFlags

	count := flag.Int("count", 1, "Number of tokens to mint (1-10)")
	alg := flag.String("alg", "HS256", "Signing algorithm: HS256, HS384, HS512, RS256, RS384, RS512")
	expiresIn := flag.Int64("expires-in", 3600, "Token lifetime in seconds")
	subject := flag.String("subject", "", "Fixed sub claim; random per token when empty")
	issuer := flag.String("issuer", "", "Fixed iss claim; library default when empty")
	roles := flag.Bool("roles", false, "Include the synthetic roles claim")
	scope := flag.Bool("scope", false, "Include the synthetic scope claim")
	secret := flag.String("secret", "", "HMAC secret; fresh key per token when empty")
	flag.Var(&claims, "claim", "Extra claim as name=value (repeatable)")
	flag.Parse()

	algorithm := tokenmint.Algorithm(strings.ToUpper(*alg))
	if !algorithm.Valid() {
		log.Fatalf("unknown algorithm %q", *alg)
	}

	builder := tokenmint.New().
		Algorithm(algorithm).
		IncludeRoles(*roles).
		IncludeScope(*scope)

	builder, err := builder.Count(*count)
	if err != nil {
		log.Fatalf("invalid count: %v", err)
	}
	builder, err = builder.ExpiresIn(*expiresIn)
	if err != nil {
		log.Fatalf("invalid expires-in: %v", err)
	}

	if *subject != "" {
		builder = builder.Subject(*subject)
	}
	if *issuer != "" {
		builder = builder.Issuer(*issuer)
	}
	if *secret != "" {
		if !algorithm.IsHMAC() {
			log.Fatalf("-secret only applies to HMAC algorithms")
		}
		builder = builder.Key(tokenmint.KeyFromSecret([]byte(*secret)))
	}

	for _, claim := range claims {
		name, value, _ := strings.Cut(claim, "=")
		builder = builder.AddClaim(name, value)
	}

	tokens, err := builder.Generate()
	if err != nil {
		log.Fatalf("failed to mint tokens: %v", err)
	}

	for _, token := range tokens {
		fmt.Println(token)
	}
}
