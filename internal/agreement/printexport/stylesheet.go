// internal/agreement/printexport/stylesheet.go
package printexport

// stylesheet is the fixed legal-document styling embedded in every export.
// It is identical for all six template variants.
const stylesheet = `
body {
	font-family: "Georgia", "Times New Roman", serif;
	color: #1a1a1a;
	margin: 48px 56px;
	line-height: 1.55;
}
h1 {
	font-size: 22px;
	text-align: center;
	letter-spacing: 1px;
	text-transform: uppercase;
	margin-bottom: 4px;
}
.subtitle {
	text-align: center;
	font-style: italic;
	margin-top: 0;
	margin-bottom: 6px;
}
.reference {
	text-align: center;
	font-size: 12px;
	color: #555;
	margin-bottom: 28px;
}
h2 {
	font-size: 15px;
	border-bottom: 1px solid #1a1a1a;
	padding-bottom: 3px;
	margin-top: 26px;
}
table {
	width: 100%;
	border-collapse: collapse;
	margin: 10px 0;
}
td {
	border: 1px solid #444;
	padding: 6px 10px;
	font-size: 13px;
}
td.label {
	width: 42%;
	background: #f4f1ea;
}
tr.emphasis td {
	font-weight: bold;
}
ol.clauses {
	padding-left: 22px;
}
ol.clauses li {
	font-size: 13px;
	margin-bottom: 6px;
}
.signatures {
	display: flex;
	flex-wrap: wrap;
	justify-content: space-between;
	margin-top: 56px;
}
.signature {
	width: 45%;
	margin-bottom: 36px;
}
.signature .line {
	border-top: 1px solid #1a1a1a;
	margin-top: 42px;
	padding-top: 4px;
	font-size: 12px;
}
.footnote {
	margin-top: 40px;
	font-size: 11px;
	color: #666;
	text-align: center;
}
@media print {
	body { margin: 24px 32px; }
}
`
