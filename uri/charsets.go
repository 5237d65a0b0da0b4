/*
Copyright 2025 Triton Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package uri

import "github.com/jplu/triton/charset"

// The grammar character sets below follow the collected ABNF of RFC 3986,
// Appendix A. Each set names the characters that may appear unescaped at a
// given position; anything else must be percent-encoded (or is an error,
// depending on the production).
var (
	// alpha is the ALPHA production.
	alpha = charset.Union(charset.Range('a', 'z'), charset.Range('A', 'Z'))

	// digit is the DIGIT production.
	digit = charset.Range('0', '9')

	// hexdig is the HEXDIG production, in both letter cases.
	hexdig = charset.Union(digit, charset.Range('A', 'F'), charset.Range('a', 'f'))

	// unreserved is the "unreserved" production.
	unreserved = charset.Union(alpha, digit, charset.Of('-', '.', '_', '~'))

	// subDelims is the "sub-delims" production.
	subDelims = charset.Of('!', '$', '&', '\'', '(', ')', '*', '+', ',', ';', '=')

	// schemeNotFirst covers every scheme character after the first, which
	// must be alphabetic.
	schemeNotFirst = charset.Union(alpha, digit, charset.Of('+', '-', '.'))

	// pcharNotPctEncoded is "pchar" minus the pct-encoded alternative.
	pcharNotPctEncoded = charset.Union(unreserved, subDelims, charset.Of(':', '@'))

	// queryOrFragmentNotPctEncoded is the shared "query" / "fragment"
	// production, minus pct-encoded.
	queryOrFragmentNotPctEncoded = pcharNotPctEncoded.With(charset.Of('/', '?'))

	// queryNotPctEncodedWithoutPlus is the "query" production minus
	// pct-encoded and minus '+'. Some HTTP services (object-storage APIs
	// among them) treat an unescaped '+' in a query as a space, so '+' is
	// always escaped when a query is serialized.
	queryNotPctEncodedWithoutPlus = charset.Union(
		unreserved,
		charset.Of('!', '$', '&', '\'', '(', ')', '*', ',', ';', '='),
		charset.Of(':', '@', '/', '?'),
	)

	// userInfoNotPctEncoded is the "userinfo" production, minus pct-encoded.
	userInfoNotPctEncoded = charset.Union(unreserved, subDelims, charset.Of(':'))

	// regNameNotPctEncoded is the "reg-name" production, minus pct-encoded.
	regNameNotPctEncoded = charset.Union(unreserved, subDelims)

	// ipvFutureLastPart covers the characters after the '.' of an
	// IPvFuture literal.
	ipvFutureLastPart = charset.Union(unreserved, subDelims, charset.Of(':'))
)
