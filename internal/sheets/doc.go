// Package sheets fetches the chamber readings from the Google Apps Script
// web app that fronts the sensor spreadsheet.
//
// The script answers {status, data, message}. Anything other than a 2xx
// response with status "success" and a data array fails the batch with a
// single *FetchError or *UpstreamError.
package sheets
