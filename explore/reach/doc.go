// Package reach implements spec 4.6.1's simple worklist reachability:
// pop a node, test its labels against the target, otherwise enumerate
// and intern its successors, push the newly discovered ones.
package reach
