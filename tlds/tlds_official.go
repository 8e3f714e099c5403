package tlds

// Official is a sorted list of public top-level domains (TLDs) and a selection of widely used
// effective top-level domains (eTLDs, multi-label public suffixes such as "co.uk"). gen/TLDs
// regenerates this list from the IANA TLD registry and the Public Suffix List; this snapshot is a
// curated subset for environments without network access to those sources at build time.
var Official = []string{
	`academy`,
	`agency`,
	`app`,
	`au`,
	`biz`,
	`blog`,
	`br`,
	`ca`,
	`cc`,
	`cloud`,
	`club`,
	`co`,
	`co.in`,
	`co.jp`,
	`co.nz`,
	`co.uk`,
	`co.za`,
	`com`,
	`com.au`,
	`com.br`,
	`com.cn`,
	`de`,
	`dev`,
	`edu`,
	`edu.au`,
	`eu`,
	`fr`,
	`gov`,
	`gov.in`,
	`gov.uk`,
	`in`,
	`info`,
	`io`,
	`jp`,
	`me`,
	`mil`,
	`mobi`,
	`name`,
	`net`,
	`net.au`,
	`nl`,
	`ninja`,
	`nz`,
	`online`,
	`org`,
	`org.uk`,
	`pro`,
	`ru`,
	`store`,
	`tech`,
	`tv`,
	`uk`,
	`us`,
	`xyz`,
	`za`,
}
