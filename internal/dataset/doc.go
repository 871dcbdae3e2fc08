// Package dataset assembles labeled character datasets from admissible words
// and writes them as CSV files.
//
// A run computes a target length L, pairs every admissible word with a random
// noise string, drops anything longer than L, shuffles the labeled entries and
// splits them into training and testing subsets. Each subset is written twice,
// once with the "Valid" label column and once with the "prediction" label
// column:
//
//	dtrain.csv          char01,...,charNN,Valid
//	dtest.csv           char01,...,charNN,Valid
//	dtrain_predict.csv  char01,...,charNN,prediction
//	dtest_predict.csv   char01,...,charNN,prediction
//
// Words shorter than L are right padded with the filler character, so every
// row has exactly L character fields followed by the label.
package dataset
