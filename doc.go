/*
Package ofximport parses OFX/QFX bank statements for reconciliation import.

ofximport attempts to parse OFX data files which deviate from the OFX spec
by omitting ending tags (OFX 1.x SGML style) as well as well-formed OFX 2.x
XML. Parse results degrade to empty values on malformed input instead of
returning errors; callers inspect Validate for a verdict.
*/
package ofximport
