// Package htmldom attaches pagers to tables in a parsed HTML document.
//
// It is the document rendition of the widget: control groups are real
// <div>/<button>/<span> elements inserted after each host, and row visibility
// is expressed the way jQuery's show/hide does it, with an inline
// "display: none" declaration. Documents are parsed and queried with goquery.
package htmldom
