// Package reportpdf provides the PDF engines for report documents.
//
// ChromiumEngine is the primary engine and drives a shared headless Chromium
// via chromedp. TextEngine is the degraded fallback used when no browser
// binary is available; it lays the Markdown body out line by line with a
// page footer. Detect picks one of the two at startup.
package reportpdf
